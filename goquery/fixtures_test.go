package goquery_test

// detailPage is a trimmed-down anime detail page in the source site's
// template: detail panel rows, synopsis, batch list + episode list,
// and a recommendation block.
const detailPage = `<html><body>
<div class="venutama">
<div class="fotoanime"><img src="https://otakudesu.cloud/wp-content/uploads/frieren.jpg"></div>
<div class="infozin">
<div class="infozingle">
<p><span><b>Judul</b>: Sousou no Frieren</span></p>
<p><span><b>Japanese</b>: 葬送のフリーレン</span></p>
<p><span><b>Skor</b>: 9.03</span></p>
<p><span><b>Produser</b>: Aniplex, Dentsu</span></p>
<p><span><b>Tipe</b>: TV</span></p>
<p><span><b>Status</b>: Completed</span></p>
<p><span><b>Total Episode</b>: 28</span></p>
<p><span><b>Durasi</b>: 24 Menit</span></p>
<p><span><b>Tanggal Rilis</b>: Sep 29, 2023</span></p>
<p><span><b>Studio</b>: Madhouse</span></p>
<p><span><b>Genre</b>: <a href="https://otakudesu.cloud/genres/adventure/">Adventure</a>, <a href="https://otakudesu.cloud/genres/drama/">Drama</a>, <a href="https://otakudesu.cloud/genres/fantasy/">Fantasy</a></span></p>
</div>
</div>
<div class="sinopc"><p>Penyihir&nbsp;Frieren mengalahkan raja iblis.</p><p>Perjalanan dimulai.</p></div>
<div class="episodelists">
<div class="episodelist"><ul><li><span><a href="https://otakudesu.cloud/batch/fsn-frieren-batch-sub-indo/">Sousou no Frieren Batch Subtitle Indonesia</a></span></li></ul></div>
<div class="episodelist"><ul>
<li><span><a href="https://otakudesu.cloud/episode/fsn-frieren-episode-3-sub-indo/">Sousou no Frieren Episode 3 Subtitle Indonesia</a></span><span class="zeebr">30 Sep</span></li>
<li><span><a href="https://otakudesu.cloud/episode/fsn-frieren-episode-2-sub-indo/">Sousou no Frieren Episode 2 Subtitle Indonesia</a></span><span class="zeebr">29 Sep</span></li>
<li><span><a href="https://otakudesu.cloud/episode/fsn-frieren-episode-1-sub-indo/">Sousou no Frieren Episode 1 Subtitle Indonesia</a></span><span class="zeebr">29 Sep</span></li>
</ul></div>
</div>
</div>
<div id="recommend-anime-series"><div class="isi-recommend-anime-series">
<div class="isi-konten"><div class="isi-anime"><a href="https://otakudesu.cloud/anime/mushoku-tensei-sub-indo/"><img src="https://otakudesu.cloud/wp-content/uploads/mushoku.jpg"></a><div class="judul-anime">Mushoku Tensei</div></div></div>
<div class="isi-konten"><div class="isi-anime"><a href="https://otakudesu.cloud/anime/kusuriya-sub-indo/"><img src="https://otakudesu.cloud/wp-content/uploads/kusuriya.jpg"></a><div class="judul-anime">Kusuriya no Hitorigoto</div></div></div>
</div></div>
</body></html>`

// singleListPage has only one episode list, exercising the secondary
// episode selector.
const singleListPage = `<html><body>
<div class="episodelists">
<div class="episodelist"><ul>
<li><span><a href="https://otakudesu.cloud/episode/one-episode-2-sub-indo/">Episode 2</a></span></li>
<li><span><a href="https://otakudesu.cloud/episode/one-episode-1-sub-indo/">Episode 1</a></span></li>
</ul></div>
</div>
</body></html>`

// listingBlob is a serialized run of listing item elements as produced
// by slicing a listing page's item selector.
const listingBlob = `<li><div class="detpost"><div class="epz">Episode 8</div><span class="epztipe">Sabtu</span><div class="newnime">30 Agustus</div><div class="thumb"><a href="https://otakudesu.cloud/anime/frieren-sub-indo/"><div class="thumbz"><img src="https://otakudesu.cloud/wp-content/uploads/frieren-thumb.jpg"><h2 class="jdlflm">Sousou no Frieren</h2></div></a></div></div></li>
<li><div class="detpost"><div class="epz">Episode 21</div><span class="epztipe">Minggu</span><div class="newnime">31 Agustus</div><div class="thumb"><a href="https://otakudesu.cloud/anime/one-piece-sub-indo/"><div class="thumbz"><img src="https://otakudesu.cloud/wp-content/uploads/op-thumb.jpg"><h2 class="jdlflm">One Piece</h2></div></a></div></div></li>`

// homePage wraps two listing sections the way the front page does.
const homePage = `<html><body><div class="venutama"><div class="rseries">
<div class="rapi"><div class="venz"><ul>
<li><div class="detpost"><div class="epz">Episode 8</div><span class="epztipe">Sabtu</span><div class="newnime">30 Agustus</div><div class="thumb"><a href="https://otakudesu.cloud/anime/frieren-sub-indo/"><div class="thumbz"><img src="https://otakudesu.cloud/wp-content/uploads/frieren-thumb.jpg"><h2 class="jdlflm">Sousou no Frieren</h2></div></a></div></div></li>
</ul></div></div>
<div class="rapi"><div class="venz"><ul>
<li><div class="detpost"><div class="epz">12 Episode</div><span class="epztipe">8.71</span><div class="newnime">12 Apr</div><div class="thumb"><a href="https://otakudesu.cloud/anime/bocchi-sub-indo/"><div class="thumbz"><img src="https://otakudesu.cloud/wp-content/uploads/bocchi-thumb.jpg"><h2 class="jdlflm">Bocchi the Rock!</h2></div></a></div></div></li>
</ul></div></div>
</div></div></body></html>`

// paginatedListing is an ongoing listing page with a pagination widget.
const paginatedListing = `<html><body>
<div class="venutama"><div class="rseries"><div class="rapi"><div class="venz"><ul>
<li><div class="detpost"><div class="epz">Episode 8</div><span class="epztipe">Sabtu</span><div class="newnime">30 Agustus</div><div class="thumb"><a href="https://otakudesu.cloud/anime/frieren-sub-indo/"><div class="thumbz"><img src="https://otakudesu.cloud/wp-content/uploads/frieren-thumb.jpg"><h2 class="jdlflm">Sousou no Frieren</h2></div></a></div></div></li>
</ul></div></div></div></div>
<div class="pagination"><a class="prev page-numbers" href="/ongoing-anime/page/1">« Sebelumnya</a><a class="page-numbers" href="/ongoing-anime/page/1">1</a><span class="page-numbers current">2</span><a class="page-numbers" href="/ongoing-anime/page/3">3</a><a class="page-numbers" href="/ongoing-anime/page/7">7</a><a class="next page-numbers" href="/ongoing-anime/page/3">Selanjutnya »</a></div>
</body></html>`

// searchPage is a free-text search result page.
const searchPage = `<html><body><ul class="chivsrc">
<li><img src="https://otakudesu.cloud/wp-content/uploads/frieren-search.jpg"><h2><a href="https://otakudesu.cloud/anime/frieren-sub-indo/">Sousou no Frieren Subtitle Indonesia</a></h2><div class="set"><b>Genres</b> : <a href="https://otakudesu.cloud/genres/adventure/">Adventure</a>, <a href="https://otakudesu.cloud/genres/fantasy/">Fantasy</a></div><div class="set"><b>Status</b> : Completed</div><div class="set"><b>Rating</b> : 9.03</div></li>
<li><img src="https://otakudesu.cloud/wp-content/uploads/yuusha-search.jpg"><h2><a href="https://otakudesu.cloud/anime/yuusha-sub-indo/">Sousou no Frieren: Yuusha</a></h2><div class="set"><b>Status</b> : Ongoing</div></li>
</ul></body></html>`

// genreListPage is the genre taxonomy page.
const genreListPage = `<html><body><ul class="genres"><li>
<a href="https://otakudesu.cloud/genres/action/">Action</a>
<a href="https://otakudesu.cloud/genres/adventure/">Adventure</a>
<a href="https://otakudesu.cloud/genres/slice-of-life/">Slice of Life</a>
</li></ul></body></html>`

// genreAnimePage is one page of a genre-filtered listing using the
// column-card template.
const genreAnimePage = `<html><body>
<div class="col-anime"><div class="col-anime-cover"><img src="https://otakudesu.cloud/wp-content/uploads/frieren-col.jpg"></div><div class="col-anime-title"><a href="https://otakudesu.cloud/anime/frieren-sub-indo/">Sousou no Frieren</a></div><div class="col-anime-studio">Madhouse</div><div class="col-anime-eps">28 Eps</div><div class="col-anime-rating">9.03</div><div class="col-anime-date">Sep 29, 2023</div></div>
<div class="col-anime"><div class="col-anime-cover"><img src="https://otakudesu.cloud/wp-content/uploads/dungeon-col.jpg"></div><div class="col-anime-title"><a href="https://otakudesu.cloud/anime/dungeon-meshi-sub-indo/">Dungeon Meshi</a></div><div class="col-anime-studio">Trigger</div><div class="col-anime-eps">24 Eps</div><div class="col-anime-rating">8.71</div><div class="col-anime-date">Jan 4, 2024</div></div>
<div class="pagination"><span class="page-numbers current">1</span><a class="page-numbers" href="/genres/fantasy/page/2">2</a><a class="next page-numbers" href="/genres/fantasy/page/2">Selanjutnya »</a></div>
</body></html>`
